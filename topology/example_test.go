package topology_test

import (
	"fmt"

	"github.com/katalvlaran/roomtopo/grid"
	"github.com/katalvlaran/roomtopo/template"
	"github.com/katalvlaran/roomtopo/topology"
)

// ExampleExtract extracts two rooms joined by a three-cell doorway. The
// doorway becomes a third room whose two gateway sides share their edges
// with the original gateways.
func ExampleExtract() {
	reg := template.NewRegistry(nil)
	g, err := grid.FromLegend([]string{
		"#############",
		"#.....#.....#",
		"#.....+.....#",
		"#.....+.....#",
		"#.....+.....#",
		"#.....#.....#",
		"#############",
	}, grid.DefaultLegend(), reg, grid.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	topo, err := topology.Extract(g, reg)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, id := range topo.Rooms() {
		fmt.Printf("room %d (gateway=%t)\n", id, topo.IsGatewayRoom(id))
		bs, _ := topo.Barriers(id)
		for _, b := range bs {
			if !b.Gateway {
				fmt.Printf("  %s\n", b.String())
				continue
			}
			dest, _ := topo.Destinations(b.ID)
			fmt.Printf("  %s center %v joins %v\n", b.String(), b.Centerpoint(), dest)
		}
	}
	// Output:
	// room 41 (gateway=false)
	//   wall#67[(1,0)→(6,1) south]
	//   gateway#68[(6,2)→(6,4) west] center {6 3.5} joins [41 70]
	//   wall#69[(6,5)→(0,1) west]
	// room 70 (gateway=false)
	//   wall#96[(7,0)→(6,5) south]
	//   gateway#97[(6,4)→(6,2) east] center {7 3.5} joins [70 41]
	//   wall#98[(6,1)→(6,1) east]
	// room 99 (gateway=true)
	//   gateway#103[(5,4)→(5,2) east] center {6 3.5} joins [99 41]
	//   wall#104[(6,1)→(6,1) south]
	//   gateway#105[(7,2)→(7,4) west] center {7 3.5} joins [99 70]
	//   wall#106[(6,5)→(6,5) north]
}

// ExampleExtract_protrusion shows a wall cell jutting into a room: the top
// wall is split around it and its tip is a barrier of its own.
func ExampleExtract_protrusion() {
	reg := template.NewRegistry(nil)
	g, _ := grid.FromLegend([]string{
		"#######",
		"#..#..#",
		"#.....#",
		"#######",
	}, grid.DefaultLegend(), reg, grid.DefaultOptions())

	topo, err := topology.Extract(g, reg)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	bs, _ := topo.Barriers(topo.Rooms()[0])
	for _, b := range bs {
		fmt.Println(b.Left, b.Right, b.Direction, b.Len())
	}
	// Output:
	// (1,0) (3,1) south 3
	// (3,1) (3,1) south 1
	// (3,1) (0,1) east 12
}
