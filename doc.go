/*
 * doc.go, part of torsionrings.
 *
 * Copyright 2024 The torsionrings Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

/*Package rings reads tables of nucleic acid backbone torsion angles
(alpha, beta, gamma, delta, epsilon, zeta and chi, one line per residue)
and provides the data model used by the ring plots in the ringplot package.

	**Capabilities**

    Reads torsion angle tables with or without a label column (i.e. the
	nucleotide type), skipping headers and malformed lines.

    Reads gzip, zstd and deflate-compressed tables transparently.

    Writes torsion angle tables (see the nucleic package to obtain them
	from a PDB file).

    Summarizes each angle channel (circular mean, range, missing values).

The value 999.0 (Missing) marks an angle that could not be measured.

The subpackages are:

    ringplot: concentric ring plots of the torsion angles, to PNG or PDF.

    nucleic: computes the torsion angles from the atoms in a PDB file.

*/
package rings
