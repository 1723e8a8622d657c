// Package metrics records build and stage metrics for blogbuilder.
//
// Components receive a Recorder and default to NoopRecorder, so metrics cost
// nothing unless enabled:
//
//	gen := site.NewGenerator(cfg, input, output, site.WithRecorder(recorder))
//
// The CLI enables PrometheusRecorder on a private registry when a metrics
// file is requested and writes the registry with WriteTextfile once the build
// finishes, for pickup by the node exporter textfile collector.
package metrics
