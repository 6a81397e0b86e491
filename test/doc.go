// Package test contains helper functions for testing. The Expect*() functions
// report a failure and allow the test to continue. The Demand*() functions
// stop the test immediately.
package test
