// Package manifold defines the geometry contract shared by every Riemannian
// manifold in this module, together with the operations that can be derived
// from it once.
//
// 🚀 What lives here?
//
//	• TangentVector : ambient-coordinate vector with vector-space operations
//	• Manifold      : required primitives: CheckPoint, CheckTangentVector,
//	                  ProjectToManifold, ProjectToTangentSpace, Exp, Log,
//	                  InnerProduct, Dim
//	• Derived ops   : Norm, Retract, Distance, Geodesic, ParallelTransport,
//	                  written once against the interface
//	• Geometry      : wrapper exposing the derived ops as methods and routing
//	                  to Retractor / Transporter overrides when present
//	• Metric        : pluggable metric tensors (EuclideanMetric)
//	• Error         : the shared failure taxonomy (DimensionMismatch,
//	                  PointNotOnManifold, InvalidTangentVector, ...)
//
// Points are plain []float64 in the manifold's ambient coordinates. A
// TangentVector carries no base point: callers always pass the base point
// alongside it.
//
// Concrete geometries live in package spaces.
package manifold
