// Package io reads and writes chart files.
//
// Charts can be written in JSON, YAML or TOML; [ImportChart] picks the
// decoder from the file extension. All three share one layout:
//
//	view_mode: day
//	tasks:
//	  - id: design
//	    name: Design
//	    start: 2024-03-04
//	    end: 2024-03-08
//	    progress: 40
//	  - id: build
//	    name: Build
//	    start: 2024-03-08
//	    end: 2024-03-20
//	    depends_on: [design]
//	  - id: review
//	    start: 2024-03-11
//	    end: 2024-03-22
//	    dependencies:
//	      - id: build
//	        type: end-to-end
//	  - id: launch
//	    type: milestone
//	    start: 2024-03-25
//	    end: 2024-03-25
//
// Dates are YYYY-MM-DD or RFC 3339; values without a zone are UTC. The
// task type is task (default), milestone or project. Relation types accept
// the forms listed at [chart.ParseRelationType].
//
// [WriteChart] produces the same layout, so a chart can be converted
// between formats or normalized.
package io
