//go:build e2e && unix

package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestShowcaseRendersSeedUsers(t *testing.T) {
	t.Parallel()
	s := startSession(t)
	s.ready()

	for _, name := range []string{"John Doe", "Jane Smith", "Tom Lee"} {
		s.expect(name)
	}
	s.expect("0 of 6 selected")
}

func TestSortCyclesByName(t *testing.T) {
	t.Parallel()
	s := startSession(t)
	s.ready()

	s.press("s")
	s.expect("Sorted by Name (asc)")
	s.expect("[Sort: Name asc]")

	s.press("s")
	s.expect("Sorted by Name (desc)")

	s.press("s")
	s.expect("Sort cleared")
}

func TestSelectionSummary(t *testing.T) {
	t.Parallel()
	s := startSession(t)
	s.ready()

	s.press(keyArrowDown, " ")
	s.expect("1 of 6 selected")

	s.press("a")
	s.expect("6 of 6 selected")
	s.expect("Deselect All")
}

func TestThemeIsPersisted(t *testing.T) {
	t.Parallel()
	s := startSession(t)
	s.ready()

	s.press("t")
	s.expect("Switched to dark mode")
	s.press("q")

	done, err := s.waitExit(2 * time.Second)
	require.True(t, done)
	require.NoError(t, err)
	s.expectFile(func(data string) bool { return strings.Contains(data, "dark") }, "dark theme in storage")
}

func TestDeleteIsPersisted(t *testing.T) {
	t.Parallel()
	s := startSession(t)
	s.ready()

	s.press(keyArrowDown, "d")
	s.expect("Deleted Jane Smith")

	s.expectFile(func(data string) bool {
		return strings.Contains(data, "John Doe") && !strings.Contains(data, "Jane Smith")
	}, "deletion in storage")
}

func TestInputPaneValidatesEmail(t *testing.T) {
	t.Parallel()
	s := startSession(t)
	s.ready()

	s.press(keyTab)
	s.expect("Email Address")

	s.press(keyArrowDown, "bob")
	s.expect("Please enter a valid email address")
}
