package logger

import (
	"testing"
)

func TestMaskPIIMasksClassifiedKeys(t *testing.T) {
	in := []interface{}{
		"user_id", "4a2f9f6e-1111-2222-3333-444455556666",
		"name", "Ada",
		"board_id", "7b3c0d1e-aaaa-bbbb-cccc-ddddeeeeffff",
		"votes_purged", 4,
	}

	got := MaskPII(in)

	if got[1] != maskedValue {
		t.Fatalf("user_id: want %q, got %v", maskedValue, got[1])
	}
	if got[3] != maskedValue {
		t.Fatalf("name: want %q, got %v", maskedValue, got[3])
	}
	if got[5] != "7b3c0d1e-aaaa-bbbb-cccc-ddddeeeeffff" {
		t.Fatalf("board_id: must not be masked, got %v", got[5])
	}
	if got[7] != 4 {
		t.Fatalf("votes_purged: must not be masked, got %v", got[7])
	}
}

func TestMaskPIICaseInsensitiveKeys(t *testing.T) {
	got := MaskPII([]interface{}{"User_ID", "abc", "EMAIL", "a@b.c"})
	if got[1] != maskedValue || got[3] != maskedValue {
		t.Fatalf("mixed-case keys must still mask, got %v", got)
	}
}

func TestMaskPIILeavesInputUntouched(t *testing.T) {
	in := []interface{}{"name", "Ada"}
	_ = MaskPII(in)
	if in[1] != "Ada" {
		t.Fatalf("input slice mutated: got %v", in[1])
	}
}

func TestMaskPIIOddLengthAndNonStringKeys(t *testing.T) {
	got := MaskPII([]interface{}{"name", "Ada", "dangling"})
	if len(got) != 3 || got[2] != "dangling" {
		t.Fatalf("odd-length list: got %v", got)
	}

	got = MaskPII([]interface{}{42, "name"})
	if got[0] != 42 || got[1] != "name" {
		t.Fatalf("non-string key list: got %v", got)
	}
}
