/*
Package resources locates hyphenation data for an application.

Pattern files are looked up in the user's cache directory and downloaded
from the hyph-utf8 project if missing. As downloading may be a
time-consuming task, functions named

   Resolve…(…)

will return a promise, which the client will call later to receive the
resource. The call to the promise-function will then block until loading
has completed.

A small set of exception lists is packaged with the application and
available through Packaged.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package resources

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'hyphtext.resources'.
func tracer() tracing.Trace {
	return tracing.Select("hyphtext.resources")
}
