// Package report computes aggregate statistics and listings over a spec.
package report
