package engine

// Version identifies the bridge release. Hosts that need finer capability
// checks use Features instead of parsing this.
const Version = "0.1.0"

// Feature bits reported by Features. Hosts probe the mask instead of
// version-sniffing.
const (
	FeatScrollbar      uint32 = 1 << 0
	FeatCanvas         uint32 = 1 << 1
	FeatStyleDumpEx    uint32 = 1 << 2
	FeatBatchTableRows uint32 = 1 << 3
	FeatBatchListItems uint32 = 1 << 4
	FeatColorHelpers   uint32 = 1 << 5
	FeatAxisLabels     uint32 = 1 << 6
	FeatSpanSetters    uint32 = 1 << 7
)

// Features returns the capability mask of this build. All current
// capabilities are compiled in unconditionally.
func Features() uint32 {
	return FeatScrollbar |
		FeatCanvas |
		FeatStyleDumpEx |
		FeatBatchTableRows |
		FeatBatchListItems |
		FeatColorHelpers |
		FeatAxisLabels |
		FeatSpanSetters
}
