// Package quad implements a numerical integration calculator over
// single-variable expressions.
//
// An expression such as "x^2 * exp(-x)" is parsed once into a postfix
// Program, which can then be evaluated at any value of x or handed to a Job
// to approximate a definite integral by the trapezoidal, Simpson, and
// midpoint rules.
//
// Parsing is the expensive step; evaluating the resulting Program is cheap
// and has no retained state, so the same Program may be shared across any
// number of evaluations and jobs.
package quad
