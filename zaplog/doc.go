// Package zaplog bridges the taglog line format into go.uber.org/zap.
// It lets an application keep the plain "[Info]message" surface while
// routing output through an existing zap pipeline.
package zaplog
