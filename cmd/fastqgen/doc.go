// 13 Aug 2026

/*

Fastqgen makes a pair of fastq files full of random reads for testing.
Usage:
	fastqgen [options]
will write n read pairs of length l to prefix_R1.fastq and
prefix_R2.fastq. Each R1 read is a random sequence over ACGT. The R2
read at the same position is its reverse complement, so the files look
like a paired end run with perfect overlap. Quality strings are random
phred characters, drawn independently on the two sides.

Flags:
	-o, -outfile
		output filename prefix, default synthetic_reads
	-n
		number of read pairs, default 1000
	-l
		read length in bases, default 150
	-V, -version
		print the version and exit
	-h
		print usage and exit

The count and length must be positive. Nothing is written until both
output files have been opened, so a failed open leaves no half results
lying around. There is no seed flag. Every run draws its seed from the
system entropy source.

*/
package main
