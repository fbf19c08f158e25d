// Sablec is the compiler frontend for the sable language.
//
// It lexes, parses, and analyzes sable source files and dumps the
// resulting trees for inspection:
//
//	# Dump the token stream
//	sablec tokens main.sb
//
//	# Dump the syntax tree
//	sablec parse main.sb
//
//	# Run the full pipeline through semantic analysis
//	sablec check main.sb
//
//	# Re-check on every save
//	sablec watch main.sb
//
//	# Show version information
//	sablec version
package main

func main() {
	Execute()
}
