package engine

// The following documentation describes how the fixed query
//
//   SELECT a, SUM(x*y*z) AS s
//   FROM T1 LEFT JOIN (T2 CROSS JOIN T3) ON a < b + c
//   GROUP BY a STABLE ORDER BY s DESC LIMIT 10
//
// is evaluated without ever producing a T2 x T3 row.
//
// 1) SuffixTable
//    T3 is sorted by c and a suffix sum of z is computed along that order. The
//    join predicate a < b + c is the same as c > a - b, so for a fixed (a, b)
//    every matching T3 row sits in one suffix of the sorted table, and the sum
//    of their z is a single lookup after a binary search.
//
// 2) GroupBy
//    One pass over T1, hashing the raw a value. Each group remembers the sum
//    of x and the ordinal of the first row that created it (its rank).
//
// 3) Join
//    Since SUM(x*y*z) over a group factors into
//
//      sum(x) * sum over T2 of ( y * sum of z where c > a - b )
//
//    each group costs O(N2 log N3) and groups do not depend on each other.
//    Groups are split into chunks and handed to a bounded pool of workers,
//    every group owns one slot of a preallocated output slice, so there is no
//    lock and no shared map. A group with no matching (b, c) gets s = 0, it is
//    a left join, the group is never dropped.
//
// 4) TopK
//    Stable sort by s descending, ties broken by rank, then cut to 10.
