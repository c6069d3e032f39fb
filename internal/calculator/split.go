package calculator

import (
	"fmt"
)

// EqualShare computes how much each participant owes when total is split evenly.
// Division floors: any remainder is dropped, so shares may sum to less than total.
func EqualShare(total uint64, participants int) (uint64, error) {
	if participants <= 0 {
		return 0, fmt.Errorf("must have at least one participant")
	}
	return total / uint64(participants), nil
}

// Remainder is the amount lost to flooring when total is split among participants.
func Remainder(total uint64, participants int) uint64 {
	if participants <= 0 {
		return total
	}
	return total % uint64(participants)
}
