package snow

import (
	"fmt"

	"snowfall/pkg/core"
)

// Order selects how the particles of a row are visited.
type Order uint8

const (
	// OrderPermuted visits a row in a fresh Fisher–Yates permutation so no
	// sweep direction wins contested cells.
	OrderPermuted Order = iota
	// OrderNatural visits a row left to right and draws nothing.
	OrderNatural
)

func (o Order) String() string {
	switch o {
	case OrderPermuted:
		return "permuted"
	case OrderNatural:
		return "natural"
	default:
		return fmt.Sprintf("Order(%d)", uint8(o))
	}
}

// ParseOrder maps a flag value to an Order.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "permuted", "perm", "":
		return OrderPermuted, nil
	case "natural", "scan":
		return OrderNatural, nil
	}
	return OrderPermuted, fmt.Errorf("snow: unknown order %q", s)
}

// fillOrder writes the visiting order of n columns into perm and returns the
// advanced seed. Permuted order consumes exactly n-1 draws.
func fillOrder(o Order, perm []int, seed core.Seed) core.Seed {
	for i := range perm {
		perm[i] = i
	}
	if o == OrderNatural {
		return seed
	}
	for i := 1; i < len(perm); i++ {
		var j int
		j, seed = seed.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return seed
}
