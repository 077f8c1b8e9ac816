// Package main provides sum, which adds the numbers given with --value.
package main

import (
	"context"
	"fmt"

	"github.com/toejough/taskrun"
)

func main() {
	taskrun.Run(sumTask())
}

func sum(ctx context.Context, values taskrun.Values) (any, error) {
	numbers := values.Floats("value")

	if con, ok := taskrun.ConsoleFrom(ctx); ok {
		con.VV(func() string { return fmt.Sprintf("adding %d numbers\n", len(numbers)) })
	}

	total := 0.0
	for _, n := range numbers {
		total += n
	}

	return total, nil
}

func sumTask() *taskrun.Task {
	return taskrun.Define(sum).
		Description("Add a list of numbers").
		Version("1.0.0").
		Field(taskrun.Float("value").
			Aliases("n").
			Limit(0).
			Export(taskrun.ExportList).
			Required().
			Description("A number to add; repeat to add more"))
}
