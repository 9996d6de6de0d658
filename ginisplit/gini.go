package ginisplit

// Scores holds the one-vs-rest partition-Gini cost for each of the
// three candidate pivots, indexed by the "is X" category:
// Scores.Red is the cost of splitting Red vs {Green, Blue} (the
// NotRed pivot), and so on.
type Scores struct {
	Red   float64
	Green float64
	Blue  float64
}

// Score computes the one-vs-rest partition-Gini cost for a three-
// valued column (values, encoded {0,1,2}) against a boolean response
// (labels), restricted to the given rows. rows must be non-empty.
//
// gini_part(a, b, n) = (a+b)/n - (a^2+b^2)/(a+b)/n when a+b > 0, else 0.
// For pivot "not X", gIn = gini_part over the X rows, gOut = gini_part
// over the non-X rows, and the returned cost is gIn + gOut. All three
// scores are computed from a single pass over rows.
func Score(values []int8, labels []bool, rows []int) (Scores, error) {
	if len(rows) == 0 {
		return Scores{}, ErrEmptyMask
	}

	// n[v][y]: counts per category v in {0,1,2} and label y in {0,1}.
	var n [3][2]float64
	for _, r := range rows {
		v := values[r]
		y := 0
		if labels[r] {
			y = 1
		}
		n[v][y]++
	}

	total := float64(len(rows))
	partitionCost := func(x int) float64 {
		aIn, bIn := n[x][0], n[x][1]
		gIn := giniPart(aIn, bIn, total)

		var aOut, bOut float64
		for v := 0; v < 3; v++ {
			if v == x {
				continue
			}
			aOut += n[v][0]
			bOut += n[v][1]
		}
		gOut := giniPart(aOut, bOut, total)
		return gIn + gOut
	}

	return Scores{
		Red:   partitionCost(0),
		Green: partitionCost(1),
		Blue:  partitionCost(2),
	}, nil
}

func giniPart(a, b, n float64) float64 {
	ab := a + b
	if ab == 0 {
		return 0
	}
	return ab/n - (a*a+b*b)/ab/n
}
