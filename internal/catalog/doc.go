// Package catalog is the sample product and order domain used by the
// guardian binaries. Every constructor and mutator validates its arguments
// with pkg/guard, so invalid state cannot be created:
//
//	p, err := catalog.NewProduct(uuid.New(), "Wireless Mouse",
//		"Ergonomic wireless mouse", decimal.RequireFromString("29.99"),
//		150, catalog.CategoryElectronics)
//	if errs := guard.Extract(err); errs != nil {
//		// errs.Params() lists each rejected field
//	}
//
// ProductService and OrderService store entities in memory and hand out
// copies. Sample products can be loaded from YAML with LoadSeed.
package catalog
