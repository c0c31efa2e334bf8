// Package ini implements a line-preserving INI document.
//
// A Document keeps every line of the source text, so comments, blank lines
// and lines it does not understand survive a parse and rewrite unchanged.
// Only the lines touched by Set, RemoveKey and RemoveSection differ in the
// output.
//
// Keys that appear before the first "[section]" header belong to the root
// section, addressed as RootSection (""). Section and key lookup is
// case-insensitive; enumeration returns names as written.
//
//	doc := ini.Parse(data)
//	_ = doc.SetValue("server", "port", value.Int(8080))
//	port := doc.ReadInt("server", "port", 80)
//	out := doc.Bytes()
package ini
