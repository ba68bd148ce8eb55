// Package config turns a user-edited .wp-env.json document into a fully
// validated [models.Config].
//
// Reading proceeds in stages: the raw file is parsed and every recognized
// field is shape-checked in declaration order, then the development and
// tests environments are assembled from the root fields, the per-environment
// override blocks and the WP_ENV_PORT / WP_ENV_TESTS_PORT variables, and
// finally the work directory is resolved (WP_ENV_HOME wins over the
// per-user default).
//
// The main entry point is [ReadConfig]; [NewReader] accepts an [Options]
// value for injecting the collaborators (environment snapshot, directory
// type detector, file reader, path probe) in tests.
//
// All failures are deterministic functions of the input and surface as a
// *[ValidationError]; no partial result is ever returned.
package config
