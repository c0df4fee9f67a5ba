/*
Package operation implements the recursive copy engine.

	+-------------+
	| TreeCopier  |
	| (Core Logic)|
	+------+------+
	       |
	+------+------+
	|   Runner    |
	| (Schedule)  |
	+------+------+

🎯 Purpose:
- Enumerates the source tree, root first, depth-first pre-order
- Mirrors every directory under the destination root
- Copies each file without ever overwriting an existing destination file

🔄 Flow:
1. Walk the source root and collect every directory
2. For each directory compute its path relative to the root
3. Create the mirrored destination directory if it is missing
4. Copy the files directly inside it with create-exclusive semantics
5. Report every outcome as it happens and aggregate it in a status.Report

⚡ Error Policy:
- Missing or unreadable source root: Run returns ErrDirectoryNotFound
- Existing destination file: Skipped outcome, the run continues
- Any other file or directory error: Failed outcome, the run continues

🔍 Example:

	copier := operation.New(src, dst, operation.Options{Reporter: logger})
	report, err := copier.Run(ctx)
*/
package operation
