// Package extrema locates valleys and mountains in a |Z| magnitude curve.
//
// A valley (strict local minimum) marks a zero candidate on the critical
// line; mountains (strict local maxima) bracket the valleys between them.
// Detection is a single pass over the sample sequence:
//
//	report, err := extrema.Detect(ds)
//	for _, v := range report.Valleys() {
//	    // v.Sample.T is a candidate zero ordinate
//	}
//
// The strict-inequality rule means plateaus classify nothing; at sampled
// resolution the magnitude curve is generically non-flat, so equal
// neighbors indicate a degenerate grid rather than a real extremum.
package extrema
