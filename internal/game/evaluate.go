package game

import "strings"

// Evaluate scores guess against target in a single left-to-right pass.
//
// A letter is Correct when it matches the target at the same index and
// Absent when the target does not contain it. Otherwise the letter gets
// Present only while the target still has occurrences that are neither
// claimed by Correct matches anywhere in the row nor by Present marks
// earlier in the row; further duplicates are Absent.
//
// Both words are expected to be uppercase and of equal length.
func Evaluate(guess, target string) []LetterStatus {
	out := make([]LetterStatus, len(guess))
	flagged := make(map[byte]int, len(guess)) // Present marks granted so far, per letter

	for i := 0; i < len(guess); i++ {
		c := guess[i]
		if i < len(target) && target[i] == c {
			out[i] = Correct
			continue
		}
		total := strings.Count(target, string(c))
		if total == 0 {
			out[i] = Absent
			continue
		}
		exact := 0
		for j := 0; j < len(guess) && j < len(target); j++ {
			if guess[j] == c && target[j] == c {
				exact++
			}
		}
		if total-exact > flagged[c] {
			out[i] = Present
			flagged[c]++
		} else {
			out[i] = Absent
		}
	}
	return out
}

// allCorrect returns true if every status is Correct.
func allCorrect(s []LetterStatus) bool {
	for _, x := range s {
		if x != Correct {
			return false
		}
	}
	return len(s) > 0
}
