package lecture

import (
	"slices"

	"github.com/olehluchkiv/golectures/internal/arrays"
)

func runAlgorithms(env *Env) error {
	nums := slices.Clone(env.Config.Numbers)
	env.println("Array:")
	env.println(nums)
	env.println()

	env.printf("Index of 6.2:\t%d\n", arrays.IndexOf(nums, 6.2))
	env.printf("Index of 4.4:\t%d\n", arrays.IndexOf(nums, 4.4))
	env.printf("Contains 2.8:\t%t\n", arrays.Contains(nums, 2.8))
	env.printf("Contains 4.4:\t%t\n", arrays.Contains(nums, 4.4))

	lo, hi := arrays.MinIndex(nums), arrays.MaxIndex(nums)
	env.printf("Min index:\t%d\n", lo)
	env.printf("Max index:\t%d\n", hi)
	if lo != arrays.NotFound {
		env.printf("Min value:\t%.1f\n", nums[lo])
		env.printf("Max value:\t%.1f\n", nums[hi])
	}

	bySelection := slices.Clone(nums)
	arrays.SelectionSort(bySelection)
	env.println("Selection sorted:")
	env.println(bySelection)

	env.println("Unsorted array:")
	env.println(nums)
	arrays.InsertionSort(nums)
	env.println("Insertion sorted:")
	env.println(nums)

	env.Logger.Debug("algorithms data set", "len", len(nums))
	return nil
}

func runArrays(env *Env) error {
	numbers := make([]int, 5)
	numbers[0], numbers[1], numbers[2], numbers[3] = 10, 20, 30, 40
	env.println("numbers:", numbers, "len:", len(numbers), "(the last slot keeps its zero value)")

	names := []string{"Alice", "Bob", "Charlie"}
	for i, n := range names {
		env.printf("names[%d] = %s\n", i, n)
	}

	env.println("Before Scale:", numbers)
	arrays.Scale(numbers, 2)
	env.println("After Scale: ", numbers)

	other := numbers
	other[0] = 99
	env.println("After writing through 'other':", numbers)

	var matrix [3][4]int
	matrix[0][0] = 1
	matrix[1][2] = 5
	matrix[2][3] = 9
	env.println("Matrix:")
	for _, row := range matrix {
		env.println(row)
	}
	return nil
}
