// Package preflight runs the five library checks in a fixed order and
// reports their results.
//
// Each check exercises one capability and turns any failure into a
// CheckResult; failures are printed and never stop the run. A panic in a
// check is recovered by the Checker, reported as "Test failed", and aborts
// the remaining checks:
//
//	checker := preflight.New()
//	results, err := checker.RunAll(ctx)
//	if err != nil {
//	    // a check panicked or ctx was cancelled
//	}
//	checker.PrintResults(results)
package preflight
