package project

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// scaffoldFiles writes the initial project files into dir and returns the
// source files in creation order. The generated design compiles and
// simulates out of the box; the testbench dumps the deterministic trace
// file the rest of the tool expects.
func scaffoldFiles(name, dir string, now time.Time) ([]string, error) {
	stamp := now.UTC().Format("2006-01-02 15:04:05 UTC")
	files := []struct {
		name    string
		content string
	}{
		{"main.v", mainSource(name, stamp)},
		{"main_test.v", testbenchSource(name, stamp)},
		{"README.md", readmeSource(name)},
	}

	var sources []string
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, []byte(f.content), 0o644); err != nil {
			return nil, err
		}
		if filepath.Ext(f.name) == ".v" {
			sources = append(sources, path)
		}
	}
	return sources, nil
}

func mainSource(name, stamp string) string {
	return fmt.Sprintf("`timescale 1ns / 1ps"+`

// Project: %s
// Module:  %s
// Created: %s

module %s (
    input wire clk,
    input wire reset,
    output reg [7:0] data_out
);

    reg [7:0] counter;

    always @(posedge clk or posedge reset) begin
        if (reset) begin
            counter  <= 8'b0;
            data_out <= 8'b0;
        end else begin
            counter  <= counter + 1;
            data_out <= counter;
        end
    end

endmodule
`, name, name, stamp, name)
}

func testbenchSource(name, stamp string) string {
	return fmt.Sprintf("`timescale 1ns / 1ps"+`

// Project: %s
// Module:  %s_test
// Created: %s

module %s_test;

    reg clk;
    reg reset;
    wire [7:0] data_out;

    %s uut (
        .clk(clk),
        .reset(reset),
        .data_out(data_out)
    );

    always #5 clk = ~clk;

    initial begin
        clk = 0;
        reset = 0;

        $display("Starting simulation...");

        reset = 1;
        #20;
        reset = 0;

        #200;

        $display("Simulation completed at time %%t", $time);
        $finish;
    end

    initial begin
        $monitor("time=%%t reset=%%b data_out=%%d", $time, reset, data_out);
    end

    initial begin
        $dumpfile("%s.vcd");
        $dumpvars(0, %s_test);
    end

endmodule
`, name, name, stamp, name, name, name, name)
}

func readmeSource(name string) string {
	return fmt.Sprintf(`# %s

Generated by hdlbench. `+"`main.v`"+` holds the design, `+"`main_test.v`"+`
the testbench that dumps `+"`%s.vcd`"+`.

## Building by hand

`+"```sh"+`
iverilog -o %s.vvp main.v main_test.v
vvp %s.vvp
gtkwave %s.vcd
`+"```"+`
`, name, name, name, name, name)
}
