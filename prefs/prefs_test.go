// This file is part of Meru.
//
// Meru is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Meru is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Meru.  If not, see <https://www.gnu.org/licenses/>.

package prefs_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/meru-emu/meru/prefs"
	"github.com/meru-emu/meru/test"
)

func tmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)
}

func cmpPrefFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), prefs.WarningBoilerPlate+"\n"+expected)
}

func TestBool(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "test: true\ntestB: false\ntestC: true\n")

	test.ExpectFailure(t, v.Set(10))
}

func TestInt(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set("99"))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "number: 10\nnumberB: 99\n")

	// failure conditions
	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
	test.ExpectEquality(t, v.Get().(int), 10)
}

func TestBytes(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bytes
	test.ExpectSuccess(t, dsk.Add("rewind.limit", &v))

	test.ExpectSuccess(t, v.Set("1g"))
	test.ExpectEquality(t, v.Get().(int), 1<<30)
	test.ExpectEquality(t, v.String(), "1GiB")

	test.ExpectSuccess(t, v.Set("64k"))
	test.ExpectEquality(t, v.Get().(int), 65536)

	// stored on disk as a plain integer
	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "rewind.limit: 65536\n")

	test.ExpectFailure(t, v.Set("lots"))
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectFailure(t, v.Set(true))
	test.ExpectEquality(t, v.Get().(int), 65536)
}

func TestFloat(t *testing.T) {
	var v prefs.Float
	test.ExpectEquality(t, v.String(), "0.000")
	test.ExpectSuccess(t, v.Set("0.5"))
	test.ExpectEquality(t, v.Get().(float64), 0.5)
	test.ExpectSuccess(t, v.Set(2))
	test.ExpectEquality(t, v.Get().(float64), 2.0)
	test.ExpectFailure(t, v.Set(true))
}

func TestLoad(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var rate prefs.Int
	var enabled prefs.Bool
	var name prefs.String
	test.ExpectSuccess(t, dsk.Add("rewind.rate", &rate))
	test.ExpectSuccess(t, dsk.Add("rewind.enabled", &enabled))
	test.ExpectSuccess(t, dsk.Add("play.core", &name))

	// loading a file that doesn't exist is not an error
	test.ExpectSuccess(t, dsk.Load())

	test.ExpectSuccess(t, rate.Set(65536))
	test.ExpectSuccess(t, enabled.Set(true))
	test.ExpectSuccess(t, name.Set("gba"))
	test.DemandSuccess(t, dsk.Save())

	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, rate.Get().(int), 0)
	test.ExpectEquality(t, enabled.Get().(bool), false)
	test.ExpectEquality(t, name.String(), "")

	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, rate.Get().(int), 65536)
	test.ExpectEquality(t, enabled.Get().(bool), true)
	test.ExpectEquality(t, name.String(), "gba")
}

// write bool and then a string from a different prefs.Disk instance. tests
// that the second writing doesn't clobber the results of the first write.
func TestBoolAndString(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	// start a new disk instance using the same file
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.DemandSuccess(t, dsk.Save())

	cmpPrefFile(t, fn, "foo: bar\ntest: true\n")
}

func TestAddKeys(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefFile(t))
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("rewind.span", &v))
	test.ExpectFailure(t, dsk.Add("rewind.span", &v))
	test.ExpectFailure(t, dsk.Add("rewind span", &v))
	test.ExpectFailure(t, dsk.Add("", &v))

	_, err = prefs.NewDisk("")
	test.ExpectFailure(t, err)
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int

	errVeto := errors.New("veto")

	v.SetHookPre(func(value prefs.Value) error {
		if value.(int) < 0 {
			return errVeto
		}
		return nil
	})
	v.SetHookPost(func(value prefs.Value) error {
		post = value.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(60))
	test.ExpectEquality(t, post, 60)

	// the pre hook prevents the value from changing
	err := v.Set(-1)
	test.ExpectSuccess(t, errors.Is(err, errVeto))
	test.ExpectEquality(t, v.Get().(int), 60)
	test.ExpectEquality(t, post, 60)
}

func TestCommandLineOverride(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var span prefs.Int
	test.ExpectSuccess(t, dsk.Add("rewind.span", &span))
	test.ExpectSuccess(t, span.Set(60))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("rewind.span::30; rewind.unused::1")
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, span.Get().(int), 30)

	// the consumed value is no longer in the group
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "rewind.unused::1")

	// command line group has been popped so the value on disk is used
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, span.Get().(int), 60)
}
