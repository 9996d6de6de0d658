// Package frame implements XDf, the DataFrame of ThreeValColumns that
// backs every tree in the forest. XDf maintains a stable mapping
// between a caller-facing split-id and the column's current physical
// position, so that Subset and AddShadows can reorder or extend the
// physical column vector without invalidating split-ids already
// recorded by a built tree (spec.md §3, "DataFrame (XDf)").
package frame
