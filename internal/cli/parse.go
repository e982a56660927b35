package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// parseGrid reads one grid row per argument, cells separated by commas:
// "1,2,3" "4,5,6" "7,8,9". Squareness is left to the grid package.
func parseGrid(rows []string) ([][]int, error) {
	g := make([][]int, len(rows))
	for r, raw := range rows {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			g[r] = []int{}
			continue
		}
		cells := strings.Split(raw, ",")
		g[r] = make([]int, len(cells))
		for c, cell := range cells {
			v, err := strconv.Atoi(strings.TrimSpace(cell))
			if err != nil {
				return nil, fmt.Errorf("row %d, column %d: %w", r, c, err)
			}
			g[r][c] = v
		}
	}
	return g, nil
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

func parseInt(name, arg string) (int, error) {
	v, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}
