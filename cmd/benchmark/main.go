package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const (
	executablePath         = "../../bin/sts"
	KB                     = 1024
	MB             float32 = 1024 * 1024
)

type ResultType int

const (
	solved ResultType = iota
	unsatisfiable
	failed
)

var (
	instances   = []int{6, 8, 10, 12, 14}
	solverNames = []string{"embedded", "glucose", "kissat"}
	resultTypes = map[ResultType]string{
		solved:        "solved",
		unsatisfiable: "unsatisfiable",
		failed:        "failed",
	}
)

type BenchmarkResult struct {
	Teams            int
	Solver           string
	SymmetryBreaking bool
	Optimize         bool
	Duration         int64
	Memory           float32
	CpuPercentage    int64
	Result           ResultType
}

func main() {
	results := make([]BenchmarkResult, 0, len(instances)*len(solverNames)*4)

	for _, teams := range instances {
		for _, solver := range solverNames {
			for _, sb := range []bool{false, true} {
				for _, opt := range []bool{false, true} {
					fmt.Printf("Benchmarking %v teams with solver \"%v\", sb=%v, opt=%v\n", teams, solver, sb, opt)

					duration, maxMemory, cpuPercentage, result := measure(teams, solver, sb, opt)

					results = append(results, BenchmarkResult{
						Teams:            teams,
						Solver:           solver,
						SymmetryBreaking: sb,
						Optimize:         opt,
						Duration:         duration,
						Memory:           maxMemory,
						CpuPercentage:    cpuPercentage,
						Result:           result,
					})
				}
			}
		}
	}

	toCsv(results)
}

func measure(teams int, solver string, sb, opt bool) (duration int64, maxMemory float32, cpuPercentage int64, result ResultType) {
	args := []string{"-v", executablePath, "-teams", fmt.Sprint(teams), "-solver", solver}
	if sb {
		args = append(args, "-sb")
	}
	if opt {
		args = append(args, "-opt")
	}
	cmd := exec.Command("/usr/bin/time", args...)

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stdErr bytes.Buffer
	cmd.Stderr = &stdErr

	cmd.Run()
	switch cmd.ProcessState.ExitCode() {
	case 10:
		result = solved
	case 20:
		result = unsatisfiable
	default:
		log.Printf("run with %v teams, solver \"%v\", sb=%v, opt=%v did not finish cleanly: %v", teams, solver, sb, opt, stdErr.String())
		result = failed
	}

	splits := strings.Split(stdErr.String(), "\n")
	getLine := func(substr string) string {
		line, ok := lo.Find(splits, func(line string) bool {
			return strings.Contains(strings.ToLower(line), substr)
		})
		if !ok {
			log.Fatalf("Substring \"%v\" could not be found", substr)
		}
		return line
	}

	duration = parseDurationLine(getLine("wall clock"))
	maxMemory = parseMemoryLine(getLine("maximum resident set size"))
	cpuPercentage = parseCpuPercentageLine(getLine("percent of cpu"))

	return duration, maxMemory, cpuPercentage, result
}

func toCsv(results []BenchmarkResult) {
	file, err := os.Create("benchmark_results.csv")
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Teams", "Solver", "SymmetryBreaking", "Optimize", "Duration(ms)", "Memory(MB)", "CPU(%)", "Result"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		record := []string{
			fmt.Sprintf("%d", result.Teams),
			result.Solver,
			fmt.Sprintf("%v", result.SymmetryBreaking),
			fmt.Sprintf("%v", result.Optimize),
			fmt.Sprintf("%d", result.Duration),
			fmt.Sprintf("%.1f", result.Memory),
			fmt.Sprintf("%d", result.CpuPercentage),
			resultTypes[result.Result],
		}
		if err := writer.Write(record); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}

func parseDurationLine(line string) int64 {
	durationStr := strings.Split(line, "(h:mm:ss or m:ss):")[1][1:]
	return parseDuration(durationStr)
}

func parseDuration(durationStr string) int64 {
	parts := strings.Split(durationStr, ":")
	secondsStr := parts[len(parts)-1]
	secondsParts := strings.Split(secondsStr, ".")

	var duration int64
	if len(parts) == 3 { // h:mm:ss
		hours := lo.Must(strconv.Atoi(parts[0]))
		minutes := lo.Must(strconv.Atoi(parts[1]))
		seconds := lo.Must(strconv.Atoi(secondsParts[0]))
		hundredthOfSeconds := lo.Must(strconv.Atoi(secondsParts[1]))
		duration = int64(hours*3600+minutes*60+seconds)*1000 + int64(hundredthOfSeconds*10)
	} else if len(parts) == 2 { // m:ss
		minutes := lo.Must(strconv.Atoi(parts[0]))
		seconds := lo.Must(strconv.Atoi(secondsParts[0]))
		hundredthOfSeconds := lo.Must(strconv.Atoi(secondsParts[1]))
		duration = int64(minutes*60+seconds)*1000 + int64(hundredthOfSeconds*10)
	} else {
		log.Fatalf("unexpected duration format: %v", durationStr)
	}
	return duration
}

func parseMemoryLine(line string) float32 {
	memoryStr := strings.Split(line, ":")[1][1:]
	return float32(lo.Must(strconv.ParseFloat(memoryStr, 32))) / 1024
}

func parseCpuPercentageLine(line string) int64 {
	percentageStr := strings.Split(line, ":")[1][1:]
	percentageStr = percentageStr[:len(percentageStr)-1]
	return int64(lo.Must(strconv.Atoi(percentageStr)))
}
