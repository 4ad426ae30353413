// Package argparse is a flat, option-only command-line parser.
//
// Callers register typed options (scalars or lists) on a Parser, run Parse
// over os.Args and read the converted values back through typed getters:
//
//	p := argparse.New("Compute the average of a list of numbers")
//	_ = p.AddList("-n", "--numbers", argparse.DoubleList, "Numbers to average", true, 0)
//	_ = p.Add("-a", "--average", argparse.Bool, "Print the average", false, nil)
//	_ = p.AddWithSuffix("-r", "--round", argparse.Int, "Decimal places", false, 2, '=')
//
//	if err := p.Parse(os.Args); err != nil {
//		if argparse.IsHelp(err) {
//			return
//		}
//		log.Fatal(err)
//	}
//	nums := p.GetDoubleList("--numbers")
//
// Supported syntax is `-x VALUE`, `--long VALUE`, glued `--long=VALUE` for
// options registered with a suffix byte, bare `-x` for booleans and lists
// given either as consecutive tokens or as one delimited token.
//
// Every public method reports failures twice: through its error return and
// through the parser's last-error record (LastError, LastErrorCode, ...),
// which is reset at the start of each call. Only the record's own readers
// (LastError, LastErrorCode, LastErrno, LastErrorMessage, ErrorOccurred)
// leave it in place.
package argparse
