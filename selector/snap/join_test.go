package snap

import (
	"reflect"
	"testing"
)

func TestJoinSinglePieceNOOP(t *testing.T) {
	pieces := []Path{{{1, 1}, {2, 2}}}
	if !reflect.DeepEqual(Join(pieces), pieces) {
		t.Fatal("Should be a NOOP")
	}
}

func TestJoinAppends(t *testing.T) {
	input := []Path{
		{{1, 1}, {2, 2}},
		{{2, 2}, {3, 3}},
	}
	expected := []Path{
		{{1, 1}, {2, 2}, {3, 3}},
	}
	if !reflect.DeepEqual(Join(input), expected) {
		t.Fatal("Failed")
	}
}

func TestJoinMultipleOutOfOrder(t *testing.T) {
	input := []Path{
		{{2, 2}, {3, 3}},
		{{3, 3}, {4, 4}},
		{{1, 1}, {2, 2}},
	}
	expected := []Path{
		{{1, 1}, {2, 2}, {3, 3}, {4, 4}},
	}
	if !reflect.DeepEqual(Join(input), expected) {
		t.Fatalf("Failed: %v", Join(input))
	}
}

func TestJoinReversesPieces(t *testing.T) {
	input := []Path{
		{{1, 1}, {2, 2}},
		{{3, 3}, {2, 2}},
	}
	expected := []Path{
		{{1, 1}, {2, 2}, {3, 3}},
	}
	if !reflect.DeepEqual(Join(input), expected) {
		t.Fatalf("Failed: %v", Join(input))
	}

	input = []Path{
		{{2, 2}, {3, 3}},
		{{2, 2}, {1, 1}},
	}
	if !reflect.DeepEqual(Join(input), expected) {
		t.Fatalf("Failed: %v", Join(input))
	}
}

func TestJoinKeepsDisconnected(t *testing.T) {
	input := []Path{
		{{1, 1}, {2, 2}},
		{{5, 5}, {6, 6}},
		{},
	}
	expected := []Path{
		{{1, 1}, {2, 2}},
		{{5, 5}, {6, 6}},
	}
	if !reflect.DeepEqual(Join(input), expected) {
		t.Fatalf("Failed: %v", Join(input))
	}
}

func TestJoinDoesNotModifyInput(t *testing.T) {
	input := []Path{
		{{2, 2}, {3, 3}},
		{{1, 1}, {2, 2}},
	}
	Join(input)
	if !reflect.DeepEqual(input[0], Path{{2, 2}, {3, 3}}) {
		t.Fatal("Input was modified")
	}
}
