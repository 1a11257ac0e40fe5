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

package database

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/openkj/gocdg/curated"
)

// Activity describes the type of access required of a database
// session.
type Activity int

// List of valid Activity values.
const (
	ActivityReading Activity = iota
	ActivityModifying
	ActivityCreating
)

const fieldSep = ","

const (
	leaderFieldKey int = iota
	leaderFieldID
	numLeaderFields
)

// Session keeps track of a database location and the entries found
// there.
type Session struct {
	dbPath   string
	activity Activity

	entryTypes map[string]Deserialiser
	entries    map[int]Entry
}

// StartSession starts a database session at the given path. The init
// function is called before any entries are read, it should register
// the entry types the database may contain.
func StartSession(path string, activity Activity, init func(*Session) error) (*Session, error) {
	db := &Session{
		dbPath:     path,
		activity:   activity,
		entryTypes: make(map[string]Deserialiser),
		entries:    make(map[int]Entry),
	}

	if init != nil {
		if err := init(db); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && activity == ActivityCreating {
			return db, nil
		}
		return nil, curated.Errorf("database: %v", err)
	}

	for i, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, fieldSep)
		if len(fields) < numLeaderFields {
			return nil, curated.Errorf("database: malformed entry (line %d)", i+1)
		}

		key, err := strconv.Atoi(fields[leaderFieldKey])
		if err != nil {
			return nil, curated.Errorf("database: invalid key (line %d)", i+1)
		}

		des, ok := db.entryTypes[fields[leaderFieldID]]
		if !ok {
			return nil, curated.Errorf("database: unrecognised entry type (%s)", fields[leaderFieldID])
		}

		ent, err := des(key, fields[numLeaderFields:])
		if err != nil {
			return nil, err
		}
		ent.SetKey(key)

		db.entries[key] = ent
	}

	return db, nil
}

// EndSession closes the database, writing any changes to disk if
// commitChanges is true. The session is not usable afterwards.
func (db *Session) EndSession(commitChanges bool) error {
	if commitChanges {
		if db.activity == ActivityReading {
			return curated.Errorf("database: %v", "cannot commit changes to a read-only session")
		}

		s := strings.Builder{}
		for _, key := range db.SortedKeyList() {
			ent := db.entries[key]

			ser, err := ent.Serialise()
			if err != nil {
				return err
			}

			s.WriteString(fmt.Sprintf("%03d%s%s", key, fieldSep, ent.ID()))
			for _, f := range ser {
				s.WriteString(fieldSep)
				s.WriteString(f)
			}
			s.WriteString("\n")
		}

		err := os.WriteFile(db.dbPath, []byte(s.String()), 0644)
		if err != nil {
			return curated.Errorf("database: %v", err)
		}
	}

	db.entries = nil
	db.entryTypes = nil

	return nil
}
