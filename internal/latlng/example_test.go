package latlng_test

import (
	"fmt"

	"github.com/UnknownOlympus/sextant/internal/latlng"
)

func ExampleToDegreesMinutesSeconds() {
	dms := latlng.ToDegreesMinutesSeconds(-10.1234, latlng.HintLng)
	fmt.Println(dms)
	fmt.Println(latlng.DegreesMinutesSecondsToDecimal(dms))
	// Output:
	// 10° 7' 24.24" W
	// -10.1234
}

func ExampleToDegreesMinutes() {
	ddm := latlng.ToDegreesMinutes(10.1234, latlng.HintLat)
	fmt.Printf("%d %v %s\n", ddm.Degrees, ddm.Minutes, ddm.Direction)
	// Output:
	// 10 7.404 N
}

func ExampleParseDMS() {
	dms, err := latlng.ParseDMS(`10° 7' 24.24" S`)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(latlng.DegreesMinutesSecondsToDecimal(dms))

	_, err = latlng.ParseDMS("10°")
	fmt.Println(err)
	// Output:
	// -10.1234
	// Invalid coordinate string
}
