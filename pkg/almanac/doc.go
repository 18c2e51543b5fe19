// Package almanac reads garden almanacs and turns them into range-mapping pipelines.
//
// The text format starts with a seed line followed by one block per map, blocks being separated by blank
// lines:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// Each rule line is "destination source length". The same content can be written in YAML:
//
//	seeds: [79, 14, 55, 13]
//	maps:
//	  - from: seed
//	    to: soil
//	    rules:
//	      - [50, 98, 2]
//	      - [52, 50, 48]
package almanac
