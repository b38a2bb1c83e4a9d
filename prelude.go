package unitdc

// StandardPrelude defines the SI base units and common derived units. Mass is
// based on the gram so that prefixes apply uniformly.
const StandardPrelude = `
# base units
@base(m) @base(g) @base(s) @base(A) @base(K) @base(mol) @base(cd)

# length
0 (m) 1e3 @derived(km)
0 (m) 1e-2 @derived(cm)
0 (m) 1e-3 @derived(mm)
0 (m) 1e-6 @derived(um)
0 (m) 1e-9 @derived(nm)
0 (m) 0.0254 @derived(in)
0 (m) 0.3048 @derived(ft)
0 (m) 1609.344 @derived(mi)

# mass
0 (g) 1e3 @derived(kg)
0 (g) 1e-3 @derived(mg)
0 (g) 1e-6 @derived(ug)
0 (g) 453.59237 @derived(lb)

# time
0 (s) 1e-3 @derived(ms)
0 (s) 60 @derived(min)
0 (s) 3600 @derived(h)
0 (s) 86400 @derived(day)

# volume
0 (m) 1 (m) * 1 (m) * 1e-3 @derived(L)
0 (m) 1 (m) * 1 (m) * 1e-6 @derived(mL)
0 (m) 1 (m) * 1 (m) * 0.003_785_411_784 @derived(gal)

# amount
0 (mol) 1e-3 @derived(mmol)
0 (mol) 1 (L) / 1e3 @derived(M)

# mechanics
0 1 (s) / 1 @derived(Hz)
0 (g) 1 (m) * 1 (s) 1 (s) * / 1e3 @derived(N)
0 (g) 1 (m) * 1 (m) * 1 (s) 1 (s) * / 1e3 @derived(J)
0 (g) 1 (m) * 1 (m) * 1 (s) 1 (s) * 1 (s) * / 1e3 @derived(W)
0 (g) 1 (m) / 1 (s) 1 (s) * / 1e3 @derived(Pa)
0 (g) 1 (m) / 1 (s) 1 (s) * / 1e8 @derived(bar)

# electricity
0 (A) 1 (s) * 1 @derived(C)
0 (g) 1 (m) * 1 (m) * 1 (s) 1 (s) * 1 (s) * 1 (A) * / 1e3 @derived(V)

# temperature
273.15 (K) 1 @derived(degC)
459.67 (K) 5 * 9 / 5 9 / @derived(degF)
`
