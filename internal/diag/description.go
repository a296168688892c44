package diag

import "fmt"

var romans = [...]string{
	"I", "II", "III", "IV", "V", "VI",
	"VII", "VIII", "IX", "X", "XI", "XII",
}

// Code returns the bracketed rule code used in output, e.g. "II:A".
func (rd *RuleDescription) Code() string {
	if rd.Group < 1 || rd.Group > len(romans) {
		panic(fmt.Errorf("rule group %d out of range", rd.Group))
	}
	return fmt.Sprintf("%s:%c", romans[rd.Group-1], rd.Letter)
}
