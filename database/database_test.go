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

package database_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/openkj/gocdg/database"
	"github.com/openkj/gocdg/test"
)

type testEntry struct {
	key  int
	name string
}

func (ent *testEntry) ID() string {
	return "test"
}

func (ent *testEntry) Key() int {
	return ent.key
}

func (ent *testEntry) SetKey(key int) {
	ent.key = key
}

func (ent *testEntry) String() string {
	return ent.name
}

func (ent *testEntry) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{ent.name}, nil
}

func (ent *testEntry) CleanUp() error {
	return nil
}

func deserialiseTestEntry(key int, fields database.SerialisedEntry) (database.Entry, error) {
	return &testEntry{key: key, name: fields[0]}, nil
}

func initTestSession(db *database.Session) error {
	return db.RegisterEntryType("test", deserialiseTestEntry)
}

func TestSessionRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "db")

	db, err := database.StartSession(dbPath, database.ActivityCreating, initTestSession)
	test.ExpectedSuccess(t, err)
	test.Equate(t, db.NumEntries(), 0)

	test.ExpectedSuccess(t, db.Add(&testEntry{name: "first"}))
	test.ExpectedSuccess(t, db.Add(&testEntry{name: "second"}))
	test.ExpectedSuccess(t, db.EndSession(true))

	db, err = database.StartSession(dbPath, database.ActivityReading, initTestSession)
	test.ExpectedSuccess(t, err)
	test.Equate(t, db.NumEntries(), 2)

	ent, err := db.Get(1)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ent.String(), "second")

	_, err = db.Get(100)
	test.ExpectedFailure(t, err)

	// read-only sessions cannot commit
	test.ExpectedFailure(t, db.EndSession(true))
}

func TestDelete(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "db")

	db, err := database.StartSession(dbPath, database.ActivityCreating, initTestSession)
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, db.Add(&testEntry{name: "first"}))
	test.ExpectedSuccess(t, db.Add(&testEntry{name: "second"}))
	test.ExpectedSuccess(t, db.Delete(0))
	test.ExpectedFailure(t, db.Delete(0))
	test.ExpectedSuccess(t, db.EndSession(true))

	db, err = database.StartSession(dbPath, database.ActivityReading, initTestSession)
	test.ExpectedSuccess(t, err)
	test.Equate(t, db.NumEntries(), 1)

	s := &strings.Builder{}
	test.ExpectedSuccess(t, db.List(s))
	test.Equate(t, strings.Contains(s.String(), "second"), true)
	test.Equate(t, strings.Contains(s.String(), "Total: 1"), true)
}

func TestUnrecognisedEntryType(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "db")

	db, err := database.StartSession(dbPath, database.ActivityCreating, initTestSession)
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, db.Add(&testEntry{name: "first"}))
	test.ExpectedSuccess(t, db.EndSession(true))

	// a session that does not register the entry type cannot read the
	// database
	_, err = database.StartSession(dbPath, database.ActivityReading, nil)
	test.ExpectedFailure(t, err)
}
