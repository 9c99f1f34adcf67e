// Package sorting implements classic comparison sorts. Every
// algorithm sorts a slice in place in increasing order according
// to a three way comparison function, which returns a negative
// number when a < b, zero when a == b and a positive number
// when a > b.
package sorting

import (
	"sort"

	errs "github.com/kay64/computer-science/errors"
	"github.com/pkg/errors"
)

// Func is the signature shared by all the sorting algorithms
type Func[T any] func(s []T, cmp func(a, b T) int)

// Algorithm is a named sorting function for integers, used by
// the command line tools
type Algorithm struct {
	Name string
	Sort Func[int]
}

var algorithms = map[string]Func[int]{
	"bubble":    Bubble[int],
	"gnome":     Gnome[int],
	"insertion": Insertion[int],
	"merge":     Merge[int],
	"selection": Selection[int],
	"shaker":    Shaker[int],
}

// Algorithms returns all the registered algorithms sorted by name
func Algorithms() []Algorithm {
	res := make([]Algorithm, 0, len(algorithms))
	for name, fn := range algorithms {
		res = append(res, Algorithm{Name: name, Sort: fn})
	}

	sort.Slice(res, func(i, j int) bool {
		return res[i].Name < res[j].Name
	})
	return res
}

// Lookup returns the algorithm registered under name
func Lookup(name string) (Algorithm, error) {
	fn, ok := algorithms[name]
	if !ok {
		return Algorithm{}, errors.Wrapf(errs.ErrUnknownAlgorithm, "lookup %q", name)
	}

	return Algorithm{Name: name, Sort: fn}, nil
}
