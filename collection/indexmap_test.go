package collection

import (
	"testing"

	"github.com/fulldump/biff"
)

func TestIndexMap_AddRow(t *testing.T) {

	index := NewIndexMap()
	row := &Row{Aliases: []string{"P001", "Q001"}}

	rebound := index.AddRow(row)

	biff.AssertNil(rebound)
	biff.AssertEqual(index.Len(), 2)

	got, ok := index.Get("Q001")
	biff.AssertTrue(ok)
	biff.AssertTrue(got == row)
}

func TestIndexMap_Rebind(t *testing.T) {

	index := NewIndexMap()
	first := &Row{Aliases: []string{"P001", "SHARED"}}
	second := &Row{Aliases: []string{"SHARED", "P002"}}

	index.AddRow(first)
	rebound := index.AddRow(second)

	biff.AssertEqual(rebound, []string{"SHARED"})
	biff.AssertEqual(index.Len(), 3)

	got, _ := index.Get("SHARED")
	biff.AssertTrue(got == second)
}

func TestIndexMap_SameRowTwice(t *testing.T) {

	index := NewIndexMap()
	row := &Row{Aliases: []string{"P001", "P001"}}

	rebound := index.AddRow(row)

	biff.AssertNil(rebound)
	biff.AssertEqual(index.Len(), 1)
}
