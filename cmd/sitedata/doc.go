// Command sitedata builds a browsing-data tree from a YAML fixture and either
// prints it or purges parts of it. It stands in for a real embedder: the
// fixture loader supplies the raw records and the logging deleters play the
// role of the storage backends.
package main
