// compileinfoprint is imported for the side effect of printing build
// provenance to os.StdErr at startup
package compileinfoprint

import "github.com/bulkrna/diffexpr/compileinfo"

func init() {
	compileinfo.PrintToStdErr()
}
