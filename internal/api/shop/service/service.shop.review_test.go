// Package shopsvc - Test tính rating trung bình làm tròn một chữ số thập phân.
package shopsvc

import (
	"testing"
)

func TestAverageRating_RongTraVeKhong(t *testing.T) {
	if got := AverageRating(nil); got != 0 {
		t.Errorf("AverageRating(nil) = %v, muốn 0", got)
	}
	if got := AverageRating([]int{}); got != 0 {
		t.Errorf("AverageRating([]) = %v, muốn 0", got)
	}
}

func TestAverageRating_LamTronMotChuSo(t *testing.T) {
	cases := []struct {
		ratings []int
		want    float64
	}{
		{[]int{4}, 4.0},
		{[]int{4, 5}, 4.5},
		{[]int{3, 4}, 3.5},
		{[]int{4, 4, 5}, 4.3}, // 4.333... -> 4.3
		{[]int{1, 5}, 3.0},
		{[]int{5, 5, 5}, 5.0},
	}
	for _, c := range cases {
		got := AverageRating(c.ratings)
		if got != c.want {
			t.Errorf("AverageRating(%v) = %v, muốn %v", c.ratings, got, c.want)
		}
	}
}

func TestAverageRating_LamTronNuaLen(t *testing.T) {
	// 17/4 = 4.25, làm tròn nửa lên thành 4.3
	if got := AverageRating([]int{4, 4, 4, 5}); got != 4.3 {
		t.Errorf("AverageRating phải làm tròn nửa lên: got %v, muốn 4.3", got)
	}
}
