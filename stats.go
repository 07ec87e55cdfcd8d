package scotch

import (
	"fmt"
	"io"

	"github.com/katalvlaran/scotch/order"
	"github.com/katalvlaran/scotch/partition"
)

// WriteStat writes one metric line to w in the `M\t<key> <value>` format
// spec.md §6 specifies for statistics output (the `dgraph_map_stat` /
// `dgraph_map_view` report format). Everything beyond this one line shape —
// file formats, CLI wrappers — stays out of scope per spec.md's Non-goals.
func WriteStat(w io.Writer, key string, value any) error {
	_, err := fmt.Fprintf(w, "M\t%s %v\n", key, value)
	return err
}

// WritePartitionStats reports the standard partition metrics: separator
// load, separator size, edge-cut, and vertex-weight load per part.
func WritePartitionStats(w io.Writer, res *partition.Result) error {
	if err := WriteStat(w, "fronload", res.FronLoad); err != nil {
		return err
	}
	if err := WriteStat(w, "fronnbr", len(res.Frontier)); err != nil {
		return err
	}
	if err := WriteStat(w, "cut", res.Cut); err != nil {
		return err
	}
	for p, load := range res.PartLoad {
		if err := WriteStat(w, fmt.Sprintf("partload%d", p), load); err != nil {
			return err
		}
	}
	return nil
}

// WriteOrderStats reports the standard ordering metrics: tree shape and
// permutation length.
func WriteOrderStats(w io.Writer, ord *order.Ordering) error {
	if err := WriteStat(w, "vertnbr", len(ord.Peritab)); err != nil {
		return err
	}
	if err := WriteStat(w, "cblknbr", ord.CblkCount); err != nil {
		return err
	}
	return WriteStat(w, "treenodenbr", ord.TreeNodeCount)
}
