// Package analysis provides numerical summaries over scan results.
//
//   - [SpacingStats]: statistics of gaps between consecutive confirmed zeros
//   - [StaircaseCorrection]: explicit-formula correction to psi(x) from
//     conjugate-paired zeros, used by the staircase view
package analysis
