// Package descriptor loads and writes package descriptors.
//
// A descriptor is a package.toml, package.yaml (or .yml) or package.json
// file at the top of a package version directory:
//
//	name = "cuebot"
//	version = "1.4.11"
//	authors = ["Open Cue Bot"]
//	description = "A render management system."
//	build_requires = ["cmake-3"]
//	requires = []
//	tools = ["cuebot"]
//	variants = [["platform-linux", "arch-x86_64"]]
//	uuid = "repository.cuebot"
//
//	[[commands]]
//	op = "append"
//	var = "PATH"
//	value = "{root}/bin"
//
// Every document is validated against an embedded JSON schema before it is
// decoded. Missing name, version or uuid, an invalid version, or a {root}
// token anywhere but at the start of a value are DESCRIPTOR_PARSE errors.
package descriptor
