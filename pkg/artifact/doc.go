// Package artifact generates the static entry pages of the admin SPA.
//
// For every page in an admin.Registry it writes two files into a cache
// directory consumed by the bundler:
//
//	<cache>/<page>.html  minimal document loading /<page>.js
//	<cache>/<page>.js    imports the page component and mounts it in #root
//
// and returns the multi-entry input map (page -> html path) the bundler builds
// from. Output is deterministic: identical registry and options produce
// byte-identical files and inputs.
//
// Generation runs only at build time:
//
//	res, err := artifact.Generate(ctx, composition.Admin,
//	    artifact.WithCache("./.honohub/generated"),
//	    artifact.WithTitle("Acme Admin"),
//	)
//
// Configure adapts Generate to the bundler's configuration hook and is a
// no-op for every command other than "build".
package artifact
