/*
Package status tracks what happened to every file and directory during a copy run.

	            +-------------+
	            |   Status    |
	            |  (Outcomes) |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|  Report   |           | Format  |
	| (Counts)  |           | (Lines) |
	+-----------+           +---------+

🎯 Purpose:
- Defines the outcome of copying one item: created, skipped or failed
- Aggregates outcomes into a Report that callers and tests can assert on
- Formats outcomes as the console lines scripts parse

🔄 Flow:
1. The operation package produces an Outcome per file
2. The Outcome is tracked in the Report
3. The log package prints FormatOutcome(o) as it happens
4. FormatCounts(report.Counts()) is printed once at the end

📝 Design Philosophy:
Status holds no file system logic. It only describes results, so the copy
engine and the presentation layer can change independently.

🔍 Example:

	report := status.NewReport()
	report.Track(status.NewSkipped(src, dst))
	fmt.Println(status.FormatCounts(report.Counts()))
*/
package status
