package main

import "math/rand"

// genKeys returns n keys in the given order. dup draws from a range a quarter
// of n wide so most keys repeat.
func genKeys(order string, n int, seed int64) []int {
	ks := make([]int, n)
	r := rand.New(rand.NewSource(seed))
	switch order {
	case "asc":
		for i := range ks {
			ks[i] = i + 1
		}
	case "desc":
		for i := range ks {
			ks[i] = n - i
		}
	case "dup":
		for i := range ks {
			ks[i] = r.Intn(n/4 + 1)
		}
	default:
		for i, p := range r.Perm(n) {
			ks[i] = p + 1
		}
	}
	return ks
}
