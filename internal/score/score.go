// Package score holds the static bidding tables for the team-building form
// and the final-score formula. The tables are fixed event configuration, not
// user data; they change only with a new release.
package score

// Datasets lists the ten benchmark datasets, in table-column order. The
// per-algorithm score arrays below are indexed by position in this slice.
var Datasets = []string{
	"Small Random", "Large Random", "Nearly Sorted", "Reverse Sorted",
	"Many Duplicates", "Small Range", "Wide Range", "Floating Data",
	"Strings", "Mixed Size",
}

// Tier groups the algorithms available at one bidding level.
type Tier struct {
	Title      string
	Algorithms []Algorithm
}

// Algorithm is one biddable entry with its per-dataset scores.
type Algorithm struct {
	Name   string
	Scores [10]int
}

// Tiers is the full bid board, tiers 1-4.
var Tiers = []Tier{
	{
		Title: "Tier 1 – Elite",
		Algorithms: []Algorithm{
			{Name: "TimSort", Scores: [10]int{9, 9, 10, 8, 9, 8, 9, 7, 9, 9}},
			{Name: "Merge Sort", Scores: [10]int{9, 9, 8, 8, 9, 7, 9, 7, 8, 9}},
			{Name: "Quick Sort", Scores: [10]int{9, 9, 7, 5, 8, 7, 9, 7, 8, 8}},
			{Name: "Heap Sort", Scores: [10]int{8, 8, 7, 7, 8, 6, 8, 6, 7, 8}},
			{Name: "Intro Sort", Scores: [10]int{9, 9, 8, 7, 9, 7, 9, 7, 8, 9}},
			{Name: "Dual Pivot Quick", Scores: [10]int{8, 9, 7, 6, 8, 7, 9, 6, 8, 8}},
			{Name: "Block Sort", Scores: [10]int{8, 8, 7, 7, 8, 6, 8, 6, 7, 8}},
			{Name: "Smooth Sort", Scores: [10]int{7, 8, 8, 7, 7, 6, 7, 6, 6, 7}},
			{Name: "Library Sort", Scores: [10]int{8, 8, 7, 7, 8, 6, 8, 6, 7, 8}},
			{Name: "Grail Sort", Scores: [10]int{8, 8, 7, 7, 8, 6, 8, 6, 7, 7}},
		},
	},
	{
		Title: "Tier 2 – Strong",
		Algorithms: []Algorithm{
			{Name: "Radix Sort", Scores: [10]int{8, 9, 7, 7, 9, 10, 9, 2, 1, 8}},
			{Name: "Counting Sort", Scores: [10]int{7, 8, 6, 6, 9, 10, 2, 1, 1, 7}},
			{Name: "Bucket Sort", Scores: [10]int{8, 8, 7, 7, 6, 6, 5, 9, 2, 7}},
			{Name: "Flash Sort", Scores: [10]int{7, 8, 6, 6, 7, 6, 6, 4, 3, 7}},
			{Name: "Pigeonhole Sort", Scores: [10]int{6, 7, 5, 5, 8, 9, 1, 1, 1, 6}},
			{Name: "Spread Sort", Scores: [10]int{8, 8, 7, 7, 8, 7, 8, 4, 4, 8}},
			{Name: "American Flag", Scores: [10]int{7, 8, 6, 6, 7, 8, 7, 2, 1, 7}},
			{Name: "Cartesian Tree", Scores: [10]int{6, 6, 6, 5, 6, 5, 6, 4, 4, 6}},
			{Name: "Strand Sort", Scores: [10]int{7, 6, 7, 5, 6, 5, 6, 4, 5, 6}},
			{Name: "Comb Sort", Scores: [10]int{6, 5, 6, 5, 6, 5, 6, 4, 5, 6}},
		},
	},
	{
		Title: "Tier 3 – Basic",
		Algorithms: []Algorithm{
			{Name: "Insertion Sort", Scores: [10]int{8, 2, 9, 3, 6, 6, 2, 4, 5, 6}},
			{Name: "Selection Sort", Scores: [10]int{6, 2, 6, 3, 5, 5, 2, 3, 4, 5}},
			{Name: "Bubble Sort", Scores: [10]int{6, 1, 7, 2, 5, 5, 1, 3, 4, 5}},
			{Name: "Shell Sort", Scores: [10]int{7, 5, 7, 6, 6, 6, 5, 5, 6, 7}},
			{Name: "Cocktail Sort", Scores: [10]int{6, 1, 7, 2, 5, 5, 1, 3, 4, 5}},
			{Name: "Gnome Sort", Scores: [10]int{6, 1, 7, 2, 5, 5, 1, 3, 4, 5}},
			{Name: "Odd-Even Sort", Scores: [10]int{6, 2, 6, 3, 5, 5, 2, 3, 4, 5}},
			{Name: "Cycle Sort", Scores: [10]int{6, 3, 6, 4, 5, 5, 3, 3, 4, 5}},
			{Name: "Pancake Sort", Scores: [10]int{6, 2, 6, 3, 5, 5, 2, 3, 4, 5}},
			{Name: "Tree Sort", Scores: [10]int{7, 4, 6, 4, 6, 5, 4, 4, 5, 6}},
		},
	},
	{
		Title: "Tier 4 – Wildcards",
		Algorithms: []Algorithm{
			{Name: "Bogo Sort", Scores: [10]int{2, 0, 3, 1, 2, 1, 0, 0, 0, 1}},
			{Name: "Bozo Sort", Scores: [10]int{2, 0, 3, 1, 2, 1, 0, 0, 0, 1}},
			{Name: "Stalin Sort", Scores: [10]int{4, 1, 6, 2, 3, 3, 1, 2, 2, 3}},
			{Name: "Sleep Sort", Scores: [10]int{3, 1, 3, 2, 2, 2, 1, 1, 0, 2}},
			{Name: "Miracle Sort", Scores: [10]int{1, 0, 10, 0, 1, 1, 0, 0, 0, 1}},
			{Name: "Slow Sort", Scores: [10]int{3, 1, 4, 2, 3, 2, 1, 1, 1, 2}},
			{Name: "Stooge Sort", Scores: [10]int{3, 1, 4, 2, 3, 2, 1, 1, 1, 2}},
			{Name: "Thanos Sort", Scores: [10]int{4, 1, 4, 2, 3, 2, 1, 1, 1, 3}},
			{Name: "Quantum Bogo", Scores: [10]int{1, 0, 2, 0, 1, 0, 0, 0, 0, 0}},
			{Name: "Intelligent Design", Scores: [10]int{2, 0, 3, 1, 2, 1, 0, 0, 0, 1}},
		},
	},
}

func findAlgorithm(name string) (Algorithm, bool) {
	for _, t := range Tiers {
		for _, a := range t.Algorithms {
			if a.Name == name {
				return a, true
			}
		}
	}
	return Algorithm{}, false
}

func datasetIndex(name string) int {
	for i, d := range Datasets {
		if d == name {
			return i
		}
	}
	return -1
}

// Compute evaluates a submission: credits/100 plus, for every selected bid,
// that algorithm's score on every selected dataset. Names that match nothing
// in the tables contribute zero, same as the original form.
func Compute(bids, selectedData []string, credits int) float64 {
	total := 0
	for _, bid := range bids {
		algo, ok := findAlgorithm(bid)
		if !ok {
			continue
		}
		for _, ds := range selectedData {
			if i := datasetIndex(ds); i >= 0 {
				total += algo.Scores[i]
			}
		}
	}
	return float64(credits)/100 + float64(total)
}
