package resources_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/wheelwriter/resources"
	"github.com/jetsetilly/wheelwriter/test"
)

func TestJoinPath(t *testing.T) {
	pth, err := resources.JoinPath("foo/bar", "baz")
	test.ExpectEquality(t, err, nil)
	test.ExpectEquality(t, pth, ".wheelwriter/foo/bar/baz")

	pth, err = resources.JoinPath("foo", "bar", "baz")
	test.ExpectEquality(t, err, nil)
	test.ExpectEquality(t, pth, ".wheelwriter/foo/bar/baz")

	pth, err = resources.JoinPath("foo/bar", "")
	test.ExpectEquality(t, err, nil)
	test.ExpectEquality(t, pth, ".wheelwriter/foo/bar")

	pth, err = resources.JoinPath("", "baz")
	test.ExpectEquality(t, err, nil)
	test.ExpectEquality(t, pth, ".wheelwriter/baz")

	pth, err = resources.JoinPath("", "")
	test.ExpectEquality(t, err, nil)
	test.ExpectEquality(t, pth, ".wheelwriter")
}

func TestReadWrite(t *testing.T) {
	t.Chdir(t.TempDir())

	// nothing has been saved yet
	s, err := resources.Read("board")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "")

	test.ExpectSuccess(t, resources.Write("board", "resets 1\n"))
	test.ExpectSuccess(t, resources.Write("board", "resets 2\n"))

	s, err = resources.Read("board")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "resets 2\n")

	// the file written alongside has been renamed over the original
	matches, err := filepath.Glob(".wheelwriter/board.*")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(matches), 0)
}
