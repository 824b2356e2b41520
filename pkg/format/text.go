// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package format

import "fmt"

func Plural(n int, noun string) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}

func VoidButtonLabel(selected int) string {
	return fmt.Sprintf("Void %d %s", selected, Plural(selected, "Transaction"))
}

func SelectionSummary(selected, total int) string {
	return fmt.Sprintf("%d of %d transactions selected", selected, total)
}

func TotalSummary(total int) string {
	return fmt.Sprintf("%d total transactions", total)
}

func ConfirmQuestion(selected int) string {
	return fmt.Sprintf("Are you sure you want to void %d selected %s?", selected, Plural(selected, "transaction"))
}
