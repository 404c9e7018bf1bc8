package units

import (
	"fmt"
	"math"
)

type Unit string

const (
	None  = Unit("")
	Bytes = Unit("B")
)

type Prefix int

const (
	noPrefix = Prefix(3 * iota)
	Kilo
	Mega
	Giga
	Tera
	Peta
)

var bigPrefixes = []Prefix{
	Kilo,
	Mega,
	Giga,
	Tera,
	Peta,
}

var prefixStrings = map[Prefix]string{
	noPrefix: "",

	Kilo: "K",
	Mega: "M",
	Giga: "G",
	Tera: "T",
	Peta: "P",
}

func (p Prefix) String() string {
	return prefixStrings[p]
}

func (p Prefix) Float64() float64 {
	return math.Pow10(int(p))
}

func SIPrefix(x float64) (float64, string) {
	if x == 0 {
		return x, ""
	}
	logx := int(math.Trunc(math.Log10(math.Abs(x))))
	if logx > 2 {
		for i := len(bigPrefixes) - 1; i >= 0; i-- {
			p := bigPrefixes[i]
			if logx >= int(p) {
				return x / p.Float64(), p.String()
			}
		}
	}
	return x, ""
}

func FmtFloat64(x float64, u Unit) string {
	x, p := SIPrefix(x)
	if p == "" && math.Round(x) == x {
		return fmt.Sprintf("%d%s", int64(x), u)
	}
	return fmt.Sprintf("%.2f%s%s", x, p, u)
}
