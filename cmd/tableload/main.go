// tableload
//
// Entry point: loads local Parquet and CSV files into the table service.
package main

import "github.com/mtiwari1/tableloader/internal/cli"

func main() {
	cli.Execute()
}
