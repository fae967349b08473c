// Package compare implements the structural comparison between an expected
// and an actual JSON value under a rule tree.
//
// Validate runs two passes. Pass A walks the actual document alone,
// checking key-must-be-absent rules and exact element counts. Pass B walks
// expected and actual in lock-step: anything not mentioned in expected is
// unconstrained (subset matching), while every expected key or element is
// compared under its resolved configuration. Failures are collected, never
// thrown; the engine has no error path of its own.
package compare
