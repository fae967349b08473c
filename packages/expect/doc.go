// Package expect is the test-facing front end of the comparison engine.
//
// An Expectation wraps an expected document and a growing rule tree;
// chainable methods address parts of the document by path string and relax
// or tighten how they must match:
//
//	expect.Expect(t, `{"id": 1, "items": [1, 2]}`).
//		TypeOnly("id").
//		AnyOrder("items[*]").
//		Matches(responseBody)
//
// Methods with a Tree suffix apply to the whole subtree below the path as
// an inherited default; the others touch only the addressed node. An empty
// path list means the document root.
package expect
