package numbers

import "testing"

func TestComputeResultWeight(t *testing.T) {
	cases := []struct {
		result uint32
		want   uint8
	}{
		{1, 0},
		{10, 0},
		{100, 0},
		{25, 1},
		{75, 1},
		{2, 1},
		{9, 1},
		{20, 1},
		{90, 1},
		{11, 3},
		{99, 3},
		{23, 3},
		{200, 1},
		{900, 1},
		{210, 3},
		{999, 5},
		{211, 5},
		{899, 5},
		{1001, 7},
		{50000, 7},
	}

	for _, c := range cases {
		if got := computeResultWeight(c.result); got != c.want {
			t.Errorf("computeResultWeight(%d) = %d, want %d", c.result, got, c.want)
		}
	}
}
