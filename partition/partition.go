package partition

import "sort"

// AssignZones assigns a Zone in [0, zoneCount) to every region so as to
// minimize per-zone cost variance, following spec §4.3:
//
//  1. Sort regions by EdgeCount ascending (stable).
//  2. Pick the weight key — NodeCount if its standard deviation
//     exceeds EdgeCount's, otherwise EdgeCount.
//  3. Call FindPartition on the chosen weights to get contiguous split
//     sizes.
//  4. Assign zones by consuming that many regions, in sorted order,
//     per zone.
//
// regions is mutated in place (Zone fields filled) and also returned
// for convenience.
func AssignZones(regions []Region, zoneCount int) ([]Region, error) {
	if len(regions) == 0 {
		return nil, ErrNoRegions
	}
	if zoneCount <= 0 {
		return nil, ErrZoneCount
	}

	sort.SliceStable(regions, func(i, j int) bool {
		return regions[i].EdgeCount < regions[j].EdgeCount
	})

	nodeWeights := make([]float64, len(regions))
	edgeWeights := make([]float64, len(regions))
	for i, r := range regions {
		nodeWeights[i] = float64(r.NodeCount)
		edgeWeights[i] = float64(r.EdgeCount)
	}

	weights := edgeWeights
	if StdDev(nodeWeights) > StdDev(edgeWeights) {
		weights = nodeWeights
	}

	splits, err := FindPartition(weights, zoneCount)
	if err != nil {
		return nil, err
	}

	idx := 0
	for zone, count := range splits {
		for c := 0; c < count; c++ {
			regions[idx].Zone = zone
			idx++
		}
	}

	return regions, nil
}
