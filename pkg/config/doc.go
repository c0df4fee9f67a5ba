/*
Package config manages optional configuration files for xcopy.

	            +-------------+
	            |   Config    |
	            | (Defaults)  |
	            +------+------+
	                   |
	      +-----------+-----------+-----------+
	      |           |                       |
	+-----+-----+ +---+-----+           +----+----+
	|   YAML    | |  JSON   |           |   HCL   |
	| Parser    | | Parser  |           | Parser  |
	+-----------+ +---------+           +---------+

🎯 Purpose:
- Loads default flag values from a file
- Validates exclude patterns and worker counts
- Supports YAML, JSON and HCL, picked by file extension

🔄 Flow:
1. Reads configuration from file
2. Parses format-specific syntax, unknown fields are rejected
3. Validates values and fills in defaults
4. The CLI overrides fields with explicitly set flags

🔍 Example, passed with xcopy --config xcopy.yaml:

	jobs: 4
	exclude:
	  - "*.tmp"
	  - .git

An HCL file passed with xcopy --config xcopy.hcl:

	jobs    = 4
	exclude = ["*.tmp", "${env.XCOPY_EXCLUDE}"]
*/
package config
