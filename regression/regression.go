// This file is part of GoCDG.
//
// GoCDG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GoCDG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GoCDG.  If not, see <https://www.gnu.org/licenses/>.

package regression

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/openkj/gocdg/curated"
	"github.com/openkj/gocdg/database"
	"github.com/openkj/gocdg/paths"
)

// the location of the regression database within the resource
// directory.
const regressionDBFile = "regressionDB"

// the terminal sequence used to erase a progress message before the
// completion message is printed over it.
const clearLine = "\r\033[2K"

// Regressor represents the generic entry in the regression database.
type Regressor interface {
	database.Entry

	// perform the regression test for the entry. the newRegression
	// flag indicates that the test is being run for the first time and
	// that the result should be recorded rather than compared.
	//
	// message is the string that is to be printed during the
	// regression. it does not have a trailing newline
	regress(newRegression bool, output io.Writer, message string) (bool, error)
}

// when starting a database session we need to register what entries we
// will find in the database.
func initDBSession(db *database.Session) error {
	return db.RegisterEntryType(videoEntryID, deserialiseVideoEntry)
}

// RegressList displays all entries in the database.
func RegressList(output io.Writer) error {
	db, err := database.StartSession(paths.ResourcePath(regressionDBFile), database.ActivityReading, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	return db.List(output)
}

// RegressAdd adds a new entry to the database. The regression test is
// run once to record the result that future runs will be compared
// against.
func RegressAdd(output io.Writer, reg Regressor) error {
	db, err := database.StartSession(paths.ResourcePath(regressionDBFile), database.ActivityCreating, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(true)

	msg := fmt.Sprintf("adding: %s", reg)
	ok, err := reg.regress(true, output, msg)
	if err != nil {
		return err
	}
	if !ok {
		return curated.Errorf("regression: %v", "could not add entry")
	}

	io.WriteString(output, clearLine)
	fmt.Fprintf(output, "added: %s\n", reg)

	return db.Add(reg)
}

// RegressDelete removes an entry from the database. The confirmation
// reader is consulted before anything is deleted, a line beginning
// with y or Y confirms.
func RegressDelete(output io.Writer, confirmation io.Reader, key string) error {
	v, err := strconv.Atoi(key)
	if err != nil {
		return curated.Errorf("regression: invalid key (%s)", key)
	}

	db, err := database.StartSession(paths.ResourcePath(regressionDBFile), database.ActivityModifying, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(true)

	ent, err := db.Get(v)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s\ndelete? (y/n): ", ent)

	confirm := make([]byte, 32)
	_, err = confirmation.Read(confirm)
	if err != nil {
		return err
	}

	if confirm[0] == 'y' || confirm[0] == 'Y' {
		err = db.Delete(v)
		if err != nil {
			return err
		}
		fmt.Fprintf(output, "deleted test #%s from regression database\n", key)
	}

	return nil
}

// RegressRun runs the tests in the regression database. An empty
// filterKeys list means that every entry is tested.
func RegressRun(output io.Writer, verbose bool, filterKeys []string) error {
	db, err := database.StartSession(paths.ResourcePath(regressionDBFile), database.ActivityReading, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	// make sure any supplied keys list is in order. the select
	// function walks the database in key order so a sorted filter can
	// be consumed front to back
	keys := make([]int, 0, len(filterKeys))
	for _, k := range filterKeys {
		v, err := strconv.Atoi(k)
		if err != nil {
			return curated.Errorf("regression: invalid key (%s)", k)
		}
		keys = append(keys, v)
	}
	sort.Ints(keys)
	filterIdx := 0

	numSucceed := 0
	numFail := 0
	numError := 0
	numSkipped := 0

	defer func() {
		fmt.Fprintf(output, "regression tests: %d succeed, %d fail, %d skipped", numSucceed, numFail, numSkipped)
		if numError > 0 {
			io.WriteString(output, " [with errors]")
		}
		io.WriteString(output, "\n")
	}()

	onSelect := func(ent database.Entry) (bool, error) {
		if len(keys) > 0 {
			if filterIdx >= len(keys) {
				numSkipped++
				return true, nil
			}
			if keys[filterIdx] != ent.Key() {
				numSkipped++
				return true, nil
			}
			filterIdx++
		}

		reg, ok := ent.(Regressor)
		if !ok {
			return false, curated.Errorf("regression: %v", "database entry does not satisfy Regressor interface")
		}

		msg := fmt.Sprintf("running: %s", reg)
		ok, err := reg.regress(false, output, msg)

		io.WriteString(output, clearLine)

		if err != nil {
			numError++
			fmt.Fprintf(output, "\r ERROR: %s\n", reg)
			if verbose {
				fmt.Fprintf(output, "%s\n", err)
			}
		} else if !ok {
			numFail++
			fmt.Fprintf(output, "\rfailure: %s\n", reg)
		} else {
			numSucceed++
			fmt.Fprintf(output, "\rsucceed: %s\n", reg)
		}

		return true, nil
	}

	return db.SelectAll(onSelect)
}
