package consts

// Space 默认值
const (
	DefaultSpaceSize = 100
	DefaultAlign     = 1
)

// Log 默认值
const (
	DefaultLogMaxSizeMB  = 10
	DefaultLogMaxAgeDays = 7
)

// BTreeDegree Defrag 排序用的 btree 阶数
const BTreeDegree = 8
